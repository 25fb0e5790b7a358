// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mocks - gomock mocks of the exchange collaborator interfaces
//
// kept by hand in the shape mockgen produces; a change to an interface
// in exchange/environment.go must be mirrored here
package mocks

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"

	account "github.com/bitmark-inc/exchanged/account"
	asset "github.com/bitmark-inc/exchanged/asset"
	currency "github.com/bitmark-inc/exchanged/currency"
	dividend "github.com/bitmark-inc/exchanged/dividend"
	holding "github.com/bitmark-inc/exchanged/holding"
	ledger "github.com/bitmark-inc/exchanged/ledger"
	order "github.com/bitmark-inc/exchanged/order"
	phasing "github.com/bitmark-inc/exchanged/phasing"
)

// MockBlockchain is a mock of Blockchain interface
type MockBlockchain struct {
	ctrl     *gomock.Controller
	recorder *MockBlockchainMockRecorder
}

// MockBlockchainMockRecorder is the mock recorder for MockBlockchain
type MockBlockchainMockRecorder struct {
	mock *MockBlockchain
}

// NewMockBlockchain creates a new mock instance
func NewMockBlockchain(ctrl *gomock.Controller) *MockBlockchain {
	mock := &MockBlockchain{ctrl: ctrl}
	mock.recorder = &MockBlockchainMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockBlockchain) EXPECT() *MockBlockchainMockRecorder {
	return m.recorder
}

// Height mocks base method
func (m *MockBlockchain) Height() uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Height")
	ret0, _ := ret[0].(uint64)
	return ret0
}

// Height indicates an expected call of Height
func (mr *MockBlockchainMockRecorder) Height() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Height", reflect.TypeOf((*MockBlockchain)(nil).Height))
}

// LastBlockTimestamp mocks base method
func (m *MockBlockchain) LastBlockTimestamp() uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LastBlockTimestamp")
	ret0, _ := ret[0].(uint64)
	return ret0
}

// LastBlockTimestamp indicates an expected call of LastBlockTimestamp
func (mr *MockBlockchainMockRecorder) LastBlockTimestamp() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LastBlockTimestamp", reflect.TypeOf((*MockBlockchain)(nil).LastBlockTimestamp))
}

// MockLedger is a mock of Ledger interface
type MockLedger struct {
	ctrl     *gomock.Controller
	recorder *MockLedgerMockRecorder
}

// MockLedgerMockRecorder is the mock recorder for MockLedger
type MockLedgerMockRecorder struct {
	mock *MockLedger
}

// NewMockLedger creates a new mock instance
func NewMockLedger(ctrl *gomock.Controller) *MockLedger {
	mock := &MockLedger{ctrl: ctrl}
	mock.recorder = &MockLedgerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockLedger) EXPECT() *MockLedgerMockRecorder {
	return m.recorder
}

// Balance mocks base method
func (m *MockLedger) Balance(arg0 account.Id, arg1 holding.Holding) (int64, int64) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Balance", arg0, arg1)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(int64)
	return ret0, ret1
}

// Balance indicates an expected call of Balance
func (mr *MockLedgerMockRecorder) Balance(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Balance", reflect.TypeOf((*MockLedger)(nil).Balance), arg0, arg1)
}

// BalanceAt mocks base method
func (m *MockLedger) BalanceAt(arg0 account.Id, arg1 holding.Holding, arg2 uint64) int64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BalanceAt", arg0, arg1, arg2)
	ret0, _ := ret[0].(int64)
	return ret0
}

// BalanceAt indicates an expected call of BalanceAt
func (mr *MockLedgerMockRecorder) BalanceAt(arg0, arg1, arg2 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BalanceAt", reflect.TypeOf((*MockLedger)(nil).BalanceAt), arg0, arg1, arg2)
}

// AddToBalance mocks base method
func (m *MockLedger) AddToBalance(arg0 ledger.Event, arg1 ledger.EventId, arg2 account.Id, arg3 holding.Holding, arg4 int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddToBalance", arg0, arg1, arg2, arg3, arg4)
	ret0, _ := ret[0].(error)
	return ret0
}

// AddToBalance indicates an expected call of AddToBalance
func (mr *MockLedgerMockRecorder) AddToBalance(arg0, arg1, arg2, arg3, arg4 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddToBalance", reflect.TypeOf((*MockLedger)(nil).AddToBalance), arg0, arg1, arg2, arg3, arg4)
}

// AddToUnconfirmedBalance mocks base method
func (m *MockLedger) AddToUnconfirmedBalance(arg0 ledger.Event, arg1 ledger.EventId, arg2 account.Id, arg3 holding.Holding, arg4 int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddToUnconfirmedBalance", arg0, arg1, arg2, arg3, arg4)
	ret0, _ := ret[0].(error)
	return ret0
}

// AddToUnconfirmedBalance indicates an expected call of AddToUnconfirmedBalance
func (mr *MockLedgerMockRecorder) AddToUnconfirmedBalance(arg0, arg1, arg2, arg3, arg4 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddToUnconfirmedBalance", reflect.TypeOf((*MockLedger)(nil).AddToUnconfirmedBalance), arg0, arg1, arg2, arg3, arg4)
}

// AddToBalanceAndUnconfirmedBalance mocks base method
func (m *MockLedger) AddToBalanceAndUnconfirmedBalance(arg0 ledger.Event, arg1 ledger.EventId, arg2 account.Id, arg3 holding.Holding, arg4 int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddToBalanceAndUnconfirmedBalance", arg0, arg1, arg2, arg3, arg4)
	ret0, _ := ret[0].(error)
	return ret0
}

// AddToBalanceAndUnconfirmedBalance indicates an expected call of AddToBalanceAndUnconfirmedBalance
func (mr *MockLedgerMockRecorder) AddToBalanceAndUnconfirmedBalance(arg0, arg1, arg2, arg3, arg4 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddToBalanceAndUnconfirmedBalance", reflect.TypeOf((*MockLedger)(nil).AddToBalanceAndUnconfirmedBalance), arg0, arg1, arg2, arg3, arg4)
}

// MockAssetRegistry is a mock of AssetRegistry interface
type MockAssetRegistry struct {
	ctrl     *gomock.Controller
	recorder *MockAssetRegistryMockRecorder
}

// MockAssetRegistryMockRecorder is the mock recorder for MockAssetRegistry
type MockAssetRegistryMockRecorder struct {
	mock *MockAssetRegistry
}

// NewMockAssetRegistry creates a new mock instance
func NewMockAssetRegistry(ctrl *gomock.Controller) *MockAssetRegistry {
	mock := &MockAssetRegistry{ctrl: ctrl}
	mock.recorder = &MockAssetRegistryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockAssetRegistry) EXPECT() *MockAssetRegistryMockRecorder {
	return m.recorder
}

// Get mocks base method
func (m *MockAssetRegistry) Get(arg0 uint64) *asset.Asset {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", arg0)
	ret0, _ := ret[0].(*asset.Asset)
	return ret0
}

// Get indicates an expected call of Get
func (mr *MockAssetRegistryMockRecorder) Get(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockAssetRegistry)(nil).Get), arg0)
}

// GetAt mocks base method
func (m *MockAssetRegistry) GetAt(arg0 uint64, arg1 uint64) *asset.Asset {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAt", arg0, arg1)
	ret0, _ := ret[0].(*asset.Asset)
	return ret0
}

// GetAt indicates an expected call of GetAt
func (mr *MockAssetRegistryMockRecorder) GetAt(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAt", reflect.TypeOf((*MockAssetRegistry)(nil).GetAt), arg0, arg1)
}

// Add mocks base method
func (m *MockAssetRegistry) Add(arg0 *asset.Asset) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Add", arg0)
	ret0, _ := ret[0].(error)
	return ret0
}

// Add indicates an expected call of Add
func (mr *MockAssetRegistryMockRecorder) Add(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Add", reflect.TypeOf((*MockAssetRegistry)(nil).Add), arg0)
}

// DeleteQuantity mocks base method
func (m *MockAssetRegistry) DeleteQuantity(arg0 asset.History) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteQuantity", arg0)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteQuantity indicates an expected call of DeleteQuantity
func (mr *MockAssetRegistryMockRecorder) DeleteQuantity(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteQuantity", reflect.TypeOf((*MockAssetRegistry)(nil).DeleteQuantity), arg0)
}

// IncreaseQuantity mocks base method
func (m *MockAssetRegistry) IncreaseQuantity(arg0 asset.History) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IncreaseQuantity", arg0)
	ret0, _ := ret[0].(error)
	return ret0
}

// IncreaseQuantity indicates an expected call of IncreaseQuantity
func (mr *MockAssetRegistryMockRecorder) IncreaseQuantity(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncreaseQuantity", reflect.TypeOf((*MockAssetRegistry)(nil).IncreaseQuantity), arg0)
}

// SetPhasingControl mocks base method
func (m *MockAssetRegistry) SetPhasingControl(arg0 uint64, arg1 bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetPhasingControl", arg0, arg1)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetPhasingControl indicates an expected call of SetPhasingControl
func (mr *MockAssetRegistryMockRecorder) SetPhasingControl(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetPhasingControl", reflect.TypeOf((*MockAssetRegistry)(nil).SetPhasingControl), arg0, arg1)
}

// MockTransferRecorder is a mock of TransferRecorder interface
type MockTransferRecorder struct {
	ctrl     *gomock.Controller
	recorder *MockTransferRecorderMockRecorder
}

// MockTransferRecorderMockRecorder is the mock recorder for MockTransferRecorder
type MockTransferRecorderMockRecorder struct {
	mock *MockTransferRecorder
}

// NewMockTransferRecorder creates a new mock instance
func NewMockTransferRecorder(ctrl *gomock.Controller) *MockTransferRecorder {
	mock := &MockTransferRecorder{ctrl: ctrl}
	mock.recorder = &MockTransferRecorderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockTransferRecorder) EXPECT() *MockTransferRecorderMockRecorder {
	return m.recorder
}

// Add mocks base method
func (m *MockTransferRecorder) Add(arg0 asset.Transfer) (*asset.Transfer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Add", arg0)
	ret0, _ := ret[0].(*asset.Transfer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Add indicates an expected call of Add
func (mr *MockTransferRecorderMockRecorder) Add(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Add", reflect.TypeOf((*MockTransferRecorder)(nil).Add), arg0)
}

// MockOrderBook is a mock of OrderBook interface
type MockOrderBook struct {
	ctrl     *gomock.Controller
	recorder *MockOrderBookMockRecorder
}

// MockOrderBookMockRecorder is the mock recorder for MockOrderBook
type MockOrderBookMockRecorder struct {
	mock *MockOrderBook
}

// NewMockOrderBook creates a new mock instance
func NewMockOrderBook(ctrl *gomock.Controller) *MockOrderBook {
	mock := &MockOrderBook{ctrl: ctrl}
	mock.recorder = &MockOrderBookMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockOrderBook) EXPECT() *MockOrderBookMockRecorder {
	return m.recorder
}

// Add mocks base method
func (m *MockOrderBook) Add(arg0 *order.Order) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Add", arg0)
	ret0, _ := ret[0].(error)
	return ret0
}

// Add indicates an expected call of Add
func (mr *MockOrderBookMockRecorder) Add(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Add", reflect.TypeOf((*MockOrderBook)(nil).Add), arg0)
}

// Get mocks base method
func (m *MockOrderBook) Get(arg0 order.Kind, arg1 uint64) *order.Order {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", arg0, arg1)
	ret0, _ := ret[0].(*order.Order)
	return ret0
}

// Get indicates an expected call of Get
func (mr *MockOrderBookMockRecorder) Get(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockOrderBook)(nil).Get), arg0, arg1)
}

// Remove mocks base method
func (m *MockOrderBook) Remove(arg0 order.Kind, arg1 uint64) *order.Order {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Remove", arg0, arg1)
	ret0, _ := ret[0].(*order.Order)
	return ret0
}

// Remove indicates an expected call of Remove
func (mr *MockOrderBookMockRecorder) Remove(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Remove", reflect.TypeOf((*MockOrderBook)(nil).Remove), arg0, arg1)
}

// MockDividendLedger is a mock of DividendLedger interface
type MockDividendLedger struct {
	ctrl     *gomock.Controller
	recorder *MockDividendLedgerMockRecorder
}

// MockDividendLedgerMockRecorder is the mock recorder for MockDividendLedger
type MockDividendLedgerMockRecorder struct {
	mock *MockDividendLedger
}

// NewMockDividendLedger creates a new mock instance
func NewMockDividendLedger(ctrl *gomock.Controller) *MockDividendLedger {
	mock := &MockDividendLedger{ctrl: ctrl}
	mock.recorder = &MockDividendLedgerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockDividendLedger) EXPECT() *MockDividendLedgerMockRecorder {
	return m.recorder
}

// Last mocks base method
func (m *MockDividendLedger) Last(arg0 uint64) *dividend.Event {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Last", arg0)
	ret0, _ := ret[0].(*dividend.Event)
	return ret0
}

// Last indicates an expected call of Last
func (mr *MockDividendLedgerMockRecorder) Last(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Last", reflect.TypeOf((*MockDividendLedger)(nil).Last), arg0)
}

// Pay mocks base method
func (m *MockDividendLedger) Pay(arg0 dividend.Payment) (*dividend.Event, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Pay", arg0)
	ret0, _ := ret[0].(*dividend.Event)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Pay indicates an expected call of Pay
func (mr *MockDividendLedgerMockRecorder) Pay(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Pay", reflect.TypeOf((*MockDividendLedger)(nil).Pay), arg0)
}

// MockCurrencies is a mock of Currencies interface
type MockCurrencies struct {
	ctrl     *gomock.Controller
	recorder *MockCurrenciesMockRecorder
}

// MockCurrenciesMockRecorder is the mock recorder for MockCurrencies
type MockCurrenciesMockRecorder struct {
	mock *MockCurrencies
}

// NewMockCurrencies creates a new mock instance
func NewMockCurrencies(ctrl *gomock.Controller) *MockCurrencies {
	mock := &MockCurrencies{ctrl: ctrl}
	mock.recorder = &MockCurrenciesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockCurrencies) EXPECT() *MockCurrenciesMockRecorder {
	return m.recorder
}

// Get mocks base method
func (m *MockCurrencies) Get(arg0 uint64) *currency.Currency {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", arg0)
	ret0, _ := ret[0].(*currency.Currency)
	return ret0
}

// Get indicates an expected call of Get
func (mr *MockCurrenciesMockRecorder) Get(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockCurrencies)(nil).Get), arg0)
}

// MockAssetControl is a mock of AssetControl interface
type MockAssetControl struct {
	ctrl     *gomock.Controller
	recorder *MockAssetControlMockRecorder
}

// MockAssetControlMockRecorder is the mock recorder for MockAssetControl
type MockAssetControlMockRecorder struct {
	mock *MockAssetControl
}

// NewMockAssetControl creates a new mock instance
func NewMockAssetControl(ctrl *gomock.Controller) *MockAssetControl {
	mock := &MockAssetControl{ctrl: ctrl}
	mock.recorder = &MockAssetControlMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockAssetControl) EXPECT() *MockAssetControlMockRecorder {
	return m.recorder
}

// Get mocks base method
func (m *MockAssetControl) Get(arg0 uint64) *phasing.Params {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", arg0)
	ret0, _ := ret[0].(*phasing.Params)
	return ret0
}

// Get indicates an expected call of Get
func (mr *MockAssetControlMockRecorder) Get(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockAssetControl)(nil).Get), arg0)
}

// Set mocks base method
func (m *MockAssetControl) Set(arg0 uint64, arg1 *phasing.Params) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Set", arg0, arg1)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Set indicates an expected call of Set
func (mr *MockAssetControlMockRecorder) Set(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*MockAssetControl)(nil).Set), arg0, arg1)
}
