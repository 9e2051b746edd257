// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package inbox

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/airgap/digest"
	"github.com/bitmark-inc/airgap/fault"
	"github.com/bitmark-inc/airgap/transactionrecord"
	"github.com/bitmark-inc/airgap/util"
)

// DefaultExpiry - how long a reported file is remembered
const DefaultExpiry = 10 * time.Minute

// SettleTime - quiet interval after the last event for a file before
// it is read, so a file copied in several writes is only read once
// complete
const SettleTime = 250 * time.Millisecond

// Handler - receives the outcome of each new file
type Handler interface {
	Accepted(name string, tx *transactionrecord.Transaction, fingerprint digest.Digest)
	Rejected(name string, err error)
}

// Inbox - a watched directory
type Inbox struct {
	log       *logger.L
	directory string
	handler   Handler
	seen      *cache.Cache
	pending   *cache.Cache
	watcher   *fsnotify.Watcher
}

// New - prepare to watch a directory
//
// an expiry of zero selects DefaultExpiry
func New(directory string, expiry time.Duration, handler Handler, log *logger.L) (*Inbox, error) {
	if nil == handler {
		return nil, fault.ErrMissingHandler
	}
	if !util.IsDirectory(directory) {
		return nil, fault.ErrNotADirectory
	}
	if expiry <= 0 {
		expiry = DefaultExpiry
	}

	directory, err := filepath.Abs(filepath.Clean(directory))
	if nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}
	if err := watcher.Add(directory); nil != err {
		watcher.Close()
		return nil, err
	}

	log.Infof("watching: %q  expiry: %s", directory, expiry)

	box := &Inbox{
		log:       log,
		directory: directory,
		handler:   handler,
		seen:      cache.New(expiry, 2*expiry),
		pending:   cache.New(SettleTime, 0), // expired by Run
		watcher:   watcher,
	}
	box.pending.OnEvicted(func(fileName string, _ interface{}) {
		box.Process(fileName)
	})
	return box, nil
}

// Directory - absolute path of the watched directory
func (box *Inbox) Directory() string {
	return box.directory
}

// Close - stop watching
func (box *Inbox) Close() error {
	return box.watcher.Close()
}

// Scan - process the files already present
//
// returns the number of files reported to the handler
func (box *Inbox) Scan() int {
	entries, err := os.ReadDir(box.directory)
	if nil != err {
		box.log.Errorf("scan: %q  error: %s", box.directory, err)
		return 0
	}

	reported := 0
	for _, entry := range entries {
		if entry.IsDir() || hidden(entry.Name()) {
			continue
		}
		if box.Process(filepath.Join(box.directory, entry.Name())) {
			reported += 1
		}
	}
	box.log.Debugf("scan: %q  reported: %d of: %d", box.directory, reported, len(entries))
	return reported
}

// Process - check a single file and report it unless it was seen recently
//
// returns true if the handler was called
func (box *Inbox) Process(fileName string) bool {
	name := filepath.Base(fileName)

	data, err := os.ReadFile(fileName)
	if nil != err {
		box.log.Warnf("read: %s  error: %s", name, err)
		return false
	}

	// creation is reported before any content is written
	if 0 == len(data) {
		box.log.Debugf("empty: %s", name)
		return false
	}

	tx, err := transactionrecord.Parse(data)
	if nil != err {
		if nil != box.seen.Add("rejected:"+name+":"+err.Error(), name, cache.DefaultExpiration) {
			box.log.Debugf("already rejected: %s", name)
			return false
		}
		box.log.Warnf("rejected: %s  error: %s", name, err)
		box.handler.Rejected(name, err)
		return true
	}

	packed, err := tx.Pack()
	if nil != err {
		box.log.Errorf("pack: %s  error: %s", name, err)
		box.handler.Rejected(name, err)
		return true
	}
	fingerprint := packed.Digest()

	if nil != box.seen.Add(fingerprint.String(), name, cache.DefaultExpiration) {
		first, _ := box.seen.Get(fingerprint.String())
		box.log.Infof("duplicate: %s  same as: %v  digest: %s", name, first, fingerprint)
		return false
	}

	box.log.Infof("accepted: %s  uid: %s  inputs: %d  outputs: %d  signatures: %d  digest: %s",
		name, tx.UID(), len(tx.Inputs()), len(tx.Outputs()), len(tx.InputSignatures()), fingerprint)
	box.handler.Accepted(name, tx, fingerprint)
	return true
}

// Run - background process reporting files as they arrive
//
// each Create or Write event restarts the settle time for that file,
// the file is processed when its pending entry expires
func (box *Inbox) Run(args interface{}, shutdown <-chan struct{}) {
	box.log.Info("starting…")

	ticker := time.NewTicker(SettleTime / 4)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-ticker.C:
			box.pending.DeleteExpired()

		case event, ok := <-box.watcher.Events:
			if !ok {
				break loop
			}
			box.log.Debugf("file event: %v", event)
			if 0 == event.Op&(fsnotify.Create|fsnotify.Write) || hidden(filepath.Base(event.Name)) {
				continue loop
			}
			if util.IsDirectory(event.Name) {
				continue loop
			}
			box.pending.Set(event.Name, event.Op, cache.DefaultExpiration)

		case err, ok := <-box.watcher.Errors:
			if !ok {
				break loop
			}
			box.log.Errorf("watcher error: %s", err)
		}
	}

	box.Close()
	box.log.Info("stopped")
}

// editor and copy tools use dot files for work in progress
func hidden(name string) bool {
	return "" == name || strings.HasPrefix(name, ".")
}
