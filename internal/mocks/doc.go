// Package mocks contains mocks for the interfaces used in this module.
//
// Each mock has a MockXxx field for each Xxx method and the method
// calls the field. Tests set only the fields they expect to be used.
package mocks
