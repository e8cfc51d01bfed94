// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the synchronizer process runtime.
//
// It runs the sync job against the hive until the process is signalled and
// then releases the local resource store.
package client
