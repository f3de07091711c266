// Package logger provides adapters for popular logger libraries to work with btree's Logger interface.
//
// The adapters allow you to use your existing logger with a tree without writing boilerplate.
// Note that the standard library's slog.Logger already implements btree.Logger directly.
//
// Example with zap:
//
//	import (
//	    "btree/btree"
//	    "btree/logger"
//	    "go.uber.org/zap"
//	)
//
//	func main() {
//	    zapLogger, _ := zap.NewProduction()
//
//	    tree, err := btree.New[string, string](2, btree.WithLogger(logger.NewZap(zapLogger)))
//	    if err != nil {
//	        panic(err)
//	    }
//	    tree.Insert("k", "v")
//	}
package logger
