// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	statsInterval = time.Minute
	mebibyte      = 1 << 20
)

// memoryStats - background process logging heap and GC figures
type memoryStats struct{}

func (*memoryStats) Run(args interface{}, shutdown <-chan struct{}) {
	log := logger.New("memory")

	ticker := time.NewTicker(statsInterval)
	defer ticker.Stop()

	for {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		log.Infof("heap: %d MiB  total: %d MiB  system: %d MiB  goroutines: %d",
			m.HeapAlloc/mebibyte, m.TotalAlloc/mebibyte, m.Sys/mebibyte, runtime.NumGoroutine())
		log.Debugf("gc cycles: %d  pause total: %s  objects: %d",
			m.NumGC, time.Duration(m.PauseTotalNs), m.HeapObjects)

		select {
		case <-shutdown:
			return
		case <-ticker.C:
		}
	}
}
