// Package models holds the data transfer objects of the Phrase API v2.
//
// Wire field names are lower case with underscores and are mapped through
// struct tags. Optional request fields are pointers or omitempty values so
// that absent fields are never sent.
package models
