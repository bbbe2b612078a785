// Package model contains the interfaces shared by the netresult packages.
//
// This package should only contain interfaces and small pieces of data
// shared by several packages, so that unrelated code stays decoupled and
// unit testing stays easy. In general, it should not contain logic.
//
// The following list summarizes what lives here:
//
// - http.go: the HTTP client abstraction used by the transport;
//
// - logger.go: an apex/log compatible logger definition.
package model
