// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Digest is one generated news digest, persisted after delivery so that
// reports can be rebuilt and pulled across machines.
type Digest struct {
	// ID is the unique identifier of the digest (UUID).
	ID string `json:"id"`

	// Date is the report day in "YYYY-MM-DD" form, used for grouping,
	// retention and remote object layout.
	Date string `json:"date"`

	// Mode is the report mode the digest was generated with
	// (e.g. "daily", "current", "incremental").
	Mode string `json:"mode"`

	// Content is the rendered digest body (Markdown).
	Content string `json:"content"`

	// CreatedAt is the generation timestamp in UTC.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Digest model.
func (d Digest) TableName() string {
	return "digests"
}
