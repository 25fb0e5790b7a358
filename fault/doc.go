// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// errors are grouped into classes; the two validation classes decide
// whether a transaction can ever become valid:
//
//   InvalidError            - permanent, never valid regardless of chain state
//   NotCurrentlyValidError  - depends on chain state, may become valid later
package fault
