// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the idkeeper command runtime.
//
// It maps the positional command to a service call and hands the result to
// the console. Only one command runs per process.
package client
