// Package main provides the entry point for tabsample.
//
// tabsample classifies the key shape of tables and draws uniformly random
// entries from them:
//
//   - classify: print the dense/sparse verdict of YAML table documents
//   - sample: draw random entries from a document
//   - bench: measure sampling latency over generated fixtures
//   - serve: run a paced sampling loop and expose Prometheus metrics
//
// Usage:
//
//	tabsample classify --file table.yaml
//	tabsample --seed 42 sample -n 10 table.yaml
//	tabsample -o json bench --sizes 100,10000
//	tabsample --config tabsample.yaml serve
package main
