// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package essence implements the digest ("essence") format exchanged between
// synchronizers and the hive.
//
// A digest is a sequence of "id,version;" records describing every resource a
// client holds. The package provides:
//   - Validate: syntax check, digits plus ',' and ';' only.
//   - Parse / Serialize: conversion between digests and [models.Resource].
//   - Compare: decides whether one digest is ahead of, behind or equal to
//     another and which records make up the difference.
//   - Observed: an erasable, timestamped byte buffer the coordinator stores.
package essence
