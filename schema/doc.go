// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package schema reads the logical model that describes which tables and
// columns each part of a room holds.
//
// A model is a YAML document:
//
//	parts:
//	  core:
//	    tables:
//	      - name: artist
//	        columns:
//	          - {name: id, type: INTEGER}
//	          - {name: name, type: TEXT NOT NULL}
//	      - name: genre
//	        physical: genres
//	        columns:
//	          - {name: name, type: TEXT}
//
// Logical names may be mapped to different physical names with the
// "physical" field. The core only ever sees physical names.
package schema
