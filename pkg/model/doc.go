// Package model defines the YAML diagram model and its loader.
//
// A model file carries a single top-level "diagram" section describing
// entity positions and the relations drawn between them:
//
//	diagram:
//	  viewbox: {width: 1360, height: 900}
//	  entities:
//	    - id: users
//	      pos: {x: 40, y: 120}
//	    - id: orders
//	      pos: {x: 320, y: 120}
//	      size: {w: 180, h: 90}
//	  relations:
//	    - {from: users, to: orders, kind: flow}
//	    - {from: orders, to: archive, kind: ref, via: [{x: 410, y: 40}]}
//
// The section is required; a model without it is rejected outright. All
// positions are authored in the file; the tool never computes layout.
package model
