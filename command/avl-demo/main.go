// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// keys used by the demonstration
type item int

// Compare - key ordering for the tree interface
func (i item) Compare(q interface{}) int {
	j := q.(item)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

// String - key display for tree printing
func (i item) String() string {
	return fmt.Sprintf("%d", int(i))
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	if !util.EnsureFileExists(configurationFile) {
		exitwithstatus.Message("%s: missing file: %q", program, configurationFile)
	}

	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	quiet := len(options["quiet"]) > 0
	verbose := len(options["verbose"]) > 0

	tree := avl.New()

	// load the configured keys
	for _, k := range theConfiguration.Keys {
		key := item(k)
		if tree.Insert(key, fmt.Sprintf("value-%d", k)) {
			log.Infof("add: %v", key)
		} else {
			log.Infof("overwrite: %v", key)
		}
	}
	log.Infof("count: %d  height: %d", tree.Count(), tree.Height())

	if !quiet {
		fmt.Printf("tree with %d nodes:\n", tree.Count())
		tree.Print(verbose)
	}

	// key lookup
	first := item(theConfiguration.Keys[0])
	node := tree.Search(first)
	if nil == node {
		log.Criticalf("search: %v failed", first)
		exitwithstatus.Message("%s: search: %v failed", program, first)
	}
	log.Infof("search: %v → %v", first, node.Value())

	// a key that was never inserted is simply not there
	absent := item(999)
	if nil != tree.Search(absent) {
		exitwithstatus.Message("%s: search: %v unexpectedly succeeded", program, absent)
	}
	log.Infof("search: %v → not found", absent)

	// reverse lookup gives the key of the first node carrying the value
	value := fmt.Sprintf("value-%d", theConfiguration.Keys[0])
	foundKey := tree.SearchValue(value)
	if nil == foundKey {
		exitwithstatus.Message("%s: search value: %q failed", program, value)
	}
	log.Infof("search value: %q → %v", value, foundKey)

	// update a stored value in place
	err = tree.UpdateValue(first, "updated")
	if nil != err {
		exitwithstatus.Message("%s: update: %v  error: %s", program, first, err)
	}
	log.Infof("update: %v → %q", first, tree.Search(first).Value())

	err = tree.UpdateValue(absent, "nothing")
	if !fault.IsErrNotFound(err) {
		exitwithstatus.Message("%s: update: %v  unexpected error: %v", program, absent, err)
	}
	log.Infof("update: %v → %s", absent, err)

	// delete the current root to force a splice of an inner node
	rootKey := tree.Root().Key()
	deletedValue, err := tree.Delete(rootKey)
	if nil != err {
		exitwithstatus.Message("%s: delete: %v  error: %s", program, rootKey, err)
	}
	log.Infof("delete: %v → %v", rootKey, deletedValue)

	_, err = tree.Delete(absent)
	if !fault.IsErrNotFound(err) {
		exitwithstatus.Message("%s: delete: %v  unexpected error: %v", program, absent, err)
	}
	log.Infof("delete: %v → %s", absent, err)

	if !quiet {
		fmt.Printf("tree after delete of %v:\n", rootKey)
		tree.Print(verbose)
	}

	// the structure must still be consistent
	if !tree.CheckUp() {
		exitwithstatus.Message("%s: parent linkage check failed", program)
	}
	if !tree.CheckBalance() {
		exitwithstatus.Message("%s: balance check failed", program)
	}
	if !tree.CheckOrder() {
		exitwithstatus.Message("%s: order check failed", program)
	}

	log.Infof("final count: %d  height: %d", tree.Count(), tree.Height())
	if !quiet {
		fmt.Printf("final count: %d  height: %d\n", tree.Count(), tree.Height())
	}
}
