// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"
)

// Reloader - receives each successfully re-read configuration
type Reloader func(*Configuration)

// Watcher - background process re-reading the configuration file
// whenever it is written
//
// the containing directory is watched so that editors which replace
// the file are also seen
type Watcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	fileName string
	reload   Reloader
}

// NewWatcher - watch a configuration file
func NewWatcher(configurationFileName string, reload Reloader) (*Watcher, error) {
	log := logger.New("config-watcher")

	fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}

	err = watcher.Add(filepath.Dir(fileName))
	if nil != err {
		log.Errorf("watch: %q  error: %s", fileName, err)
		_ = watcher.Close()
		return nil, err
	}

	return &Watcher{
		log:      log,
		watcher:  watcher,
		fileName: fileName,
		reload:   reload,
	}, nil
}

// Run - wait for file events until shutdown
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

	w.log.Infof("watching: %q", w.fileName)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case e, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(e.Name) != w.fileName || !isChange(e) {
				continue loop
			}
			w.log.Debugf("file event: %s", e)

			options, err := GetConfiguration(w.fileName)
			if nil != err {
				w.log.Errorf("reload: %q  error: %s", w.fileName, err)
				continue loop
			}
			w.reload(options)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watch error: %s", err)
		}
	}

	w.log.Info("stopped")
}

func isChange(e fsnotify.Event) bool {
	return e.Op&fsnotify.Write == fsnotify.Write ||
		e.Op&fsnotify.Create == fsnotify.Create
}
