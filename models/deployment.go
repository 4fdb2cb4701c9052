package models

import "gorm.io/gorm"

// Deployment is one asset instance placed on one domain. Remote legs carry
// Remote=true; the origin leg is recorded with its own domain as Origin.
type Deployment struct {
	gorm.Model
	Domain uint64
	Origin uint64
	Asset  string
	Name   string
	Symbol string
	Supply string
	Salt   string
	Remote bool
}

// SyncRecord is the outcome of one fan-out send. Failed records are the
// operator's replay worklist: a destination with Status=SyncFailed never
// received its remote-deploy message.
type SyncRecord struct {
	gorm.Model
	DeploymentRefer int
	Deployment      Deployment `gorm:"foreignKey:DeploymentRefer"`
	Status          uint8
	Handle          string

	Source uint64
	Dest   uint64
	Memo   string
}

const (
	SyncSent uint8 = iota + 1
	SyncFailed
)
