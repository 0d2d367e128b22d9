// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "errors"

var (
	errImageNotFound = errors.New("no such image in the gallery")
	errStoreDown     = errors.New("image store is unreachable")
)
