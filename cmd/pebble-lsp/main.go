// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"pebble/internal/lsp"
	"pebble/internal/parser"
)

const lsName = "pebble" // Name identifier for the language server

func main() {
	verbose := flag.Int("verbose", 1, "log verbosity (0 is quiet, higher is chattier)")
	logPath := flag.String("log", "", "write logs to this file instead of stderr")
	maxDepth := flag.Int("max-depth", parser.DefaultMaxDepth, "nesting limit; 0 disables it")
	flag.Parse()

	// stdout carries the protocol, so logs must never go there
	var path *string
	if *logPath != "" {
		path = logPath
	}
	commonlog.Configure(*verbose, path)
	log := commonlog.GetLogger("pebble.main")

	pebbleHandler := lsp.NewPebbleHandler(parser.MaxDepth(*maxDepth))

	handler := protocol.Handler{
		Initialize:                     pebbleHandler.Initialize,
		Initialized:                    pebbleHandler.Initialized,
		Shutdown:                       pebbleHandler.Shutdown,
		SetTrace:                       pebbleHandler.SetTrace,
		TextDocumentDidOpen:            pebbleHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           pebbleHandler.TextDocumentDidClose,
		TextDocumentDidChange:          pebbleHandler.TextDocumentDidChange,
		TextDocumentHover:              pebbleHandler.TextDocumentHover,
		TextDocumentSemanticTokensFull: pebbleHandler.TextDocumentSemanticTokensFull,
	}

	// The last argument toggles glsp's own debug logging of every message.
	s := server.NewServer(&handler, lsName, *verbose > 1)

	log.Info("starting Pebble LSP server")

	if err := s.RunStdio(); err != nil {
		log.Errorf("error running Pebble LSP server: %s", err)
		os.Exit(1)
	}
}
