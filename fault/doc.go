// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error classes
//
// Provides a class based error system so that a caller can determine
// the kind of a returned error without having to resort to partial
// string matches
package fault
