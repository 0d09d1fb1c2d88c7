// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command line client for a ledgerd daemon
//
// identities and their encrypted private keys are kept in a per
// network JSON file under $XDG_CONFIG_HOME/ledger-cli/; mutating
// commands sign their request records locally so the daemon never
// sees a private key
//
// e.g. query the default identity's funds on the local network:
//
//   ledger-cli -n local funds
package main
