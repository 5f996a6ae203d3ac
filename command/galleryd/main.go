// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/gallery/background"
	"github.com/bitmark-inc/gallery/chain"
	"github.com/bitmark-inc/gallery/configuration"
	"github.com/bitmark-inc/gallery/event"
	"github.com/bitmark-inc/gallery/gallery"
	"github.com/bitmark-inc/gallery/messagebus"
	"github.com/bitmark-inc/gallery/metrics"
	"github.com/bitmark-inc/gallery/publish"
	"github.com/bitmark-inc/gallery/rpc"
	"github.com/bitmark-inc/gallery/storage"
	"github.com/bitmark-inc/gallery/zmqutil"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

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
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
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

	if "" != theConfiguration.PidFile {
		if err := createPidFile(theConfiguration.PidFile); nil != err {
			exitwithstatus.Message("%s: %s", program, err)
		}
		defer os.Remove(theConfiguration.PidFile)
	}

	testing := chain.IsTesting(theConfiguration.Chain)

	// general info
	log.Infof("chain: %s  test mode: %v", theConfiguration.Chain, testing)
	log.Infof("database: %q", theConfiguration.Database)
	log.Infof("minimum price: %d", theConfiguration.MinimumPrice)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)
	log.Debugf("%s = %#v", "Metrics", theConfiguration.Metrics)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	mustStart(log, "storage", err)
	defer storage.Finalise()

	// every committed event is logged, counted and queued for the
	// publisher
	emitter := event.Fanout{
		event.NewLogger("events"),
		metrics.Sink{},
		messagebus.Bus.Events,
	}
	theGallery := gallery.New(emitter, theConfiguration.MinimumPrice, testing)

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, theGallery) {
		return
	}

	// start up the publishing background processes
	if 0 == len(theConfiguration.Publishing.Broadcast) {
		log.Info("publishing disabled")
	} else {
		mustStart(log, "zap authentication", zmqutil.StartAuthentication())
		mustStart(log, "publish", publish.Initialise(&theConfiguration.Publishing))
		defer publish.Finalise()
	}

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, theGallery, version, theConfiguration.Chain)
	mustStart(log, "rpc", err)
	defer rpc.Finalise()

	// remaining background processes
	processes := background.Processes{}

	watcher, err := configuration.NewWatcher(configurationFile, reloader(theGallery))
	if nil != err {
		log.Warnf("configuration watch disabled: %s", err)
	} else {
		processes = append(processes, watcher)
	}

	if "" == theConfiguration.Metrics.Listen {
		log.Info("metrics disabled")
	} else {
		server, err := metrics.New(&theConfiguration.Metrics)
		mustStart(log, "metrics", err)
		processes = append(processes, server)
	}

	// if memory logging enabled
	if len(options["memory-stats"]) > 0 {
		processes = append(processes, &memoryStats{})
	}

	running := background.Start(processes, nil)
	defer running.Stop()

	quiet := len(options["quiet"]) > 0
	if !quiet {
		fmt.Printf("\ngalleryd running, stop with CTRL-C or SIGTERM…")
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Infof("signal: %v  shutting down…", sig)
	if !quiet {
		fmt.Printf("\n%v: shutting down…\n", sig)
	}
}

// exclusive create, so a second daemon on the same file fails
func createPidFile(name string) error {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_EXCL|os.O_CREATE, 0600)
	if os.IsExist(err) {
		return fmt.Errorf("another instance is running, PID file: %q exists", name)
	}
	if nil != err {
		return fmt.Errorf("PID file: %q  error: %s", name, err)
	}
	_, err = fmt.Fprintf(f, "%d\n", os.Getpid())
	f.Close()
	return err
}

// a subsystem that cannot start ends the process
func mustStart(log *logger.L, subsystem string, err error) {
	if nil == err {
		return
	}
	log.Criticalf("%s initialise error: %s", subsystem, err)
	exitwithstatus.Message("%s initialise error: %s", subsystem, err)
}

// settings that take effect without a restart; the gallery logs the
// change itself
func reloader(g *gallery.Gallery) func(*configuration.Configuration) {
	return func(changed *configuration.Configuration) {
		g.SetMinimumPrice(changed.MinimumPrice)
	}
}
