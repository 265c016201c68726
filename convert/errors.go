// SPDX-License-Identifier: MIT
// Package convert: sentinel errors.
//
// Converters surface failures to the immediate caller and never
// recover internally. Match with errors.Is; wrapped messages name the
// offending input (its Go type or node name).
package convert

import "errors"

var (
	// ErrShape indicates the input does not match the shape a converter
	// requires. Wrapped messages carry the actual type.
	ErrShape = errors.New("convert: value does not match the required shape")

	// ErrUnsupportedConversion marks a conversion path that is
	// recognized but deliberately not provided (tree → adjacency).
	ErrUnsupportedConversion = errors.New("convert: conversion not supported")

	// ErrNonSquare indicates a matrix whose rows do not all span the
	// row count.
	ErrNonSquare = errors.New("convert: matrix is not square")

	// ErrLabelCount indicates the label sequence does not cover the
	// matrix dimension or adjacency key set.
	ErrLabelCount = errors.New("convert: label count mismatch")

	// ErrUnknownNode indicates a successor name that resolves to no
	// key or label position.
	ErrUnknownNode = errors.New("convert: unknown node name")

	// ErrRootCount indicates a tree projection over an adjacency that
	// does not have exactly one root.
	ErrRootCount = errors.New("convert: tree projection needs exactly one root")
)
