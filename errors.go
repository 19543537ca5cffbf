// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lznt1

package lznt1

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrTruncatedInput     = errors.New("input ends before declared chunk size")
	ErrTruncatedChunk     = errors.New("chunk payload ends inside a back-reference")
	ErrInvalidHeader      = errors.New("chunk header signature mismatch")
	ErrMalformedReference = errors.New("back-reference outside decoded window")
	ErrNilReader          = errors.New("reader is nil")
)
