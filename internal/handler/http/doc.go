// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the development image store.
//
// It exposes the routes the client's gateway consumes (health, metadata
// list, image binary, multipart upload and delete) together with request-ID
// tagging, access logging and response compression of the metadata list.
package http
