// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/countinghouse/ledgerd/rpc/certificate"
	"github.com/countinghouse/ledgerd/rpc/fixtures"
	"github.com/countinghouse/ledgerd/rpc/listeners"
)

type testHandler struct{}

func (h testHandler) RPC(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("RPC"))
}

func (h testHandler) Details(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Details"))
}

func (h testHandler) Root(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Root"))
}

func (h testHandler) SetAllow(_ map[string][]*net.IPNet) {}

var client *http.Client

func init() {
	customTransport := http.DefaultTransport.(*http.Transport).Clone()
	customTransport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // ignore certificate verification

	client = &http.Client{
		Transport: customTransport,
	}
}

func setup(t *testing.T) (int, listeners.Listener) {
	allow := "127.0.0.1/32"
	port := rand.Intn(30000) + 30000

	listen := fmt.Sprintf("127.0.0.1:%d", port)
	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
		Certificate:        "",
		PrivateKey:         "",
		Allow: map[string][]string{
			"details": {allow},
			"rpc":     {allow},
			"root":    {allow},
		},
	}

	wd, _ := os.Getwd()
	fixturePath := path.Join(filepath.Dir(wd), "fixtures")

	tlsConf, _, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		fixtures.Certificate(fixturePath),
		fixtures.Key(fixturePath),
	)
	if err != nil {
		t.Error("get certificate with error: ", err)
		t.FailNow()
	}

	h, err := listeners.NewHTTPS(
		&conf,
		logger.New(fixtures.LogCategory),
		tlsConf,
		testHandler{},
	)
	if err != nil {
		t.Error("NewHTTPS with error: ", err)
		t.FailNow()
	}

	return port, h
}

func TestHttpsListenerServeRPC(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port, h := setup(t)

	err := h.Serve()
	assert.Nil(t, err, "wrong Serve")

	time.Sleep(time.Millisecond) // make sure server is ready
	url := fmt.Sprintf("https://127.0.0.1:%d/ledgerd/", port)
	resp, err := client.Get(url + "rpc")
	if err != nil {
		t.Error("client get with error: ", err)
		t.FailNow()
	}
	defer resp.Body.Close()

	content, _ := ioutil.ReadAll(resp.Body)
	assert.Equal(t, "RPC", string(content), "wrong RPC call")
}

func TestHttpsListenerServeDetails(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port, h := setup(t)

	err := h.Serve()
	assert.Nil(t, err, "wrong Serve")

	time.Sleep(time.Millisecond)
	url := fmt.Sprintf("https://127.0.0.1:%d/ledgerd/", port)
	resp, err := client.Get(url + "details")
	if err != nil {
		t.Error("client get with error: ", err)
		t.FailNow()
	}
	defer resp.Body.Close()

	content, _ := ioutil.ReadAll(resp.Body)
	assert.Equal(t, "Details", string(content), "wrong Details call")
}

func TestHttpsListenerServeRoot(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port, h := setup(t)

	err := h.Serve()
	assert.Nil(t, err, "wrong Serve")

	time.Sleep(time.Millisecond)
	url := fmt.Sprintf("https://127.0.0.1:%d/ledgerd/", port)
	resp, err := client.Get(url)
	if err != nil {
		t.Error("client get with error: ", err)
		t.FailNow()
	}
	defer resp.Body.Close()

	content, _ := ioutil.ReadAll(resp.Body)
	assert.Equal(t, "Root", string(content), "wrong Root call")
}

func TestNewHTTPSWhenDisabled(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{},
	}

	h, err := listeners.NewHTTPS(
		&conf,
		logger.New(fixtures.LogCategory),
		&tls.Config{},
		testHandler{},
	)
	assert.Nil(t, err, "wrong NewHTTPS")
	assert.Nil(t, h, "listener not disabled")
}

func TestNewHTTPSWhenInvalidAllow(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:2130"},
		Allow: map[string][]string{
			"details": {"not-a-cidr"},
		},
	}

	_, err := listeners.NewHTTPS(
		&conf,
		logger.New(fixtures.LogCategory),
		&tls.Config{},
		testHandler{},
	)
	assert.NotNil(t, err, "wrong NewHTTPS")
}
