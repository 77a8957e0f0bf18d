// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the local control API of the sync client.
//
// It exposes the state of the current sync run, lets a local caller start
// or cancel a run, and serves the locally stored feeds together with the
// user edits (feed names, read and star marks) the next run sends upstream.
// Request tracing and access logging are handled here before requests reach
// the service layer.
package http
