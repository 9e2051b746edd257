// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package inbox_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/airgap/account"
	"github.com/bitmark-inc/airgap/background"
	"github.com/bitmark-inc/airgap/fault"
	"github.com/bitmark-inc/airgap/inbox"
	"github.com/bitmark-inc/airgap/inbox/mocks"
	"github.com/bitmark-inc/airgap/transactionrecord"
)

const (
	dir         = "testing"
	logCategory = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", logCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	os.RemoveAll(dir)
}

func makeTransaction(t *testing.T, uid string, receiver account.Address) *transactionrecord.Transaction {
	output, err := transactionrecord.NewSpendableOutput(uuid.MustParse(uid), receiver, 2500, nil)
	if nil != err {
		t.Fatalf("new output error: %s", err)
	}
	tx, err := transactionrecord.NewTransaction(uuid.MustParse(uid), nil, nil, []*transactionrecord.Output{output}, nil)
	if nil != err {
		t.Fatalf("new transaction error: %s", err)
	}
	return tx
}

func writeFile(t *testing.T, directory string, name string, data []byte) {
	if err := os.WriteFile(filepath.Join(directory, name), data, 0600); nil != err {
		t.Fatalf("write file error: %s", err)
	}
}

func TestNew(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := mocks.NewMockHandler(ctrl)
	log := logger.New(logCategory)

	_, err := inbox.New(t.TempDir(), 0, nil, log)
	assert.Equal(t, fault.ErrMissingHandler, err, "missing handler")

	_, err = inbox.New(filepath.Join(t.TempDir(), "absent"), 0, handler, log)
	assert.Equal(t, fault.ErrNotADirectory, err, "missing directory")

	directory := t.TempDir()
	box, err := inbox.New(directory, time.Minute, handler, log)
	if nil != err {
		t.Fatalf("new inbox error: %s", err)
	}
	defer box.Close()
	assert.Equal(t, filepath.Clean(directory), box.Directory(), "directory")
}

func TestScan(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx1 := makeTransaction(t, "0f8fad5b-d9cb-469f-a165-70867728950e", "addrA")
	tx2 := makeTransaction(t, "7c9e6679-7425-40de-944b-e07fc1f90ae7", "addrB")
	packed1, _ := tx1.Pack()
	packed2, _ := tx2.Pack()
	json1, _ := tx1.JSON()
	hex1, _ := packed1.MarshalText()

	directory := t.TempDir()
	writeFile(t, directory, "a-good.json", json1)
	writeFile(t, directory, "b-same.hex", hex1)
	writeFile(t, directory, "c-other.txt", []byte(packed2.Base58()+"\n"))
	writeFile(t, directory, "d-bad.txt", []byte("not a transaction!"))
	writeFile(t, directory, "e-empty.txt", nil)
	writeFile(t, directory, ".f-hidden.json", json1)
	if err := os.Mkdir(filepath.Join(directory, "g-directory"), 0700); nil != err {
		t.Fatalf("mkdir error: %s", err)
	}

	handler := mocks.NewMockHandler(ctrl)
	gomock.InOrder(
		handler.EXPECT().Accepted("a-good.json", tx1, packed1.Digest()).Times(1),
		handler.EXPECT().Accepted("c-other.txt", tx2, packed2.Digest()).Times(1),
		handler.EXPECT().Rejected("d-bad.txt", fault.ErrUnknownInputFormat).Times(1),
	)

	box, err := inbox.New(directory, time.Minute, handler, logger.New(logCategory))
	if nil != err {
		t.Fatalf("new inbox error: %s", err)
	}
	defer box.Close()

	assert.Equal(t, 3, box.Scan(), "first scan")

	// everything has been seen
	assert.Equal(t, 0, box.Scan(), "second scan")
}

func TestRun(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := makeTransaction(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", "addrC")
	packed, _ := tx.Pack()

	accepted := make(chan string, 1)
	rejected := make(chan string, 1)
	handler := mocks.NewMockHandler(ctrl)
	handler.EXPECT().Accepted(gomock.Any(), tx, packed.Digest()).Times(1).Do(
		func(name string, _ *transactionrecord.Transaction, _ interface{}) {
			accepted <- name
		},
	)
	handler.EXPECT().Rejected(gomock.Any(), gomock.Any()).Times(1).Do(
		func(name string, _ error) {
			rejected <- name
		},
	)

	directory := t.TempDir()
	box, err := inbox.New(directory, time.Minute, handler, logger.New(logCategory))
	if nil != err {
		t.Fatalf("new inbox error: %s", err)
	}

	p := background.Start(background.Processes{box}, nil)
	defer p.Stop()

	// written aside then moved so the file is complete when it appears
	writeFile(t, directory, ".incoming", []byte(packed.Base58()))
	err = os.Rename(filepath.Join(directory, ".incoming"), filepath.Join(directory, "signed.txt"))
	if nil != err {
		t.Fatalf("rename error: %s", err)
	}

	select {
	case name := <-accepted:
		assert.Equal(t, "signed.txt", name, "accepted file")
	case <-time.After(5 * time.Second):
		t.Fatal("file was not accepted")
	}

	writeFile(t, directory, ".broken", []byte("zzzz"))
	err = os.Rename(filepath.Join(directory, ".broken"), filepath.Join(directory, "broken.txt"))
	if nil != err {
		t.Fatalf("rename error: %s", err)
	}

	select {
	case name := <-rejected:
		assert.Equal(t, "broken.txt", name, "rejected file")
	case <-time.After(5 * time.Second):
		t.Fatal("file was not rejected")
	}
}

// a file copied in several writes is only read once it is complete
func TestRunPartialWrite(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := makeTransaction(t, "9b2f4c1e-3d5a-4e6f-8a7b-1c2d3e4f5a6b", "addrD")
	packed, _ := tx.Pack()
	data, err := tx.JSON()
	if nil != err {
		t.Fatalf("json error: %s", err)
	}

	accepted := make(chan string, 1)
	handler := mocks.NewMockHandler(ctrl)
	handler.EXPECT().Accepted("copied.json", tx, packed.Digest()).Times(1).Do(
		func(name string, _ *transactionrecord.Transaction, _ interface{}) {
			accepted <- name
		},
	)

	directory := t.TempDir()
	box, err := inbox.New(directory, time.Minute, handler, logger.New(logCategory))
	if nil != err {
		t.Fatalf("new inbox error: %s", err)
	}

	p := background.Start(background.Processes{box}, nil)

	f, err := os.OpenFile(filepath.Join(directory, "copied.json"), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if nil != err {
		t.Fatalf("create error: %s", err)
	}
	half := len(data) / 2
	if _, err := f.Write(data[:half]); nil != err {
		t.Fatalf("first write error: %s", err)
	}
	time.Sleep(inbox.SettleTime / 5)
	if _, err := f.Write(data[half:]); nil != err {
		t.Fatalf("second write error: %s", err)
	}
	f.Close()

	select {
	case name := <-accepted:
		assert.Equal(t, "copied.json", name, "accepted file")
	case <-time.After(5 * time.Second):
		t.Fatal("file was not accepted")
	}

	// no rejection follows
	time.Sleep(2 * inbox.SettleTime)
	p.Stop()
}
