// Package cli provides the interactive dashboard command-line client.
//
// It wires configuration, the local session store, the API clients, and an
// interactive REPL that the shop staff drives. Typical flow: log in with
// staff credentials, browse the product catalog and contact messages page by
// page, and run add/edit/delete flows against individual products.
//
// Key features:
//   - Login / Logout with a persistent local session
//   - Paged product and message listings with a page selector row
//   - View / Add / Edit / Delete products by their row number
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
