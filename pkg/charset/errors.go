package charset

import "errors"

var (
	ErrUnsupportedEncoding = errors.New("charset: unsupported encoding")
	ErrConversion          = errors.New("charset: conversion failed")
)
