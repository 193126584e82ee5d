// Package schema loads ASN.1 type definitions written in YAML and builds
// them into run-time type metadata.
//
// # Overview
//
// A schema file describes one module:
//
//	module: Directory
//	tagging: automatic
//	types:
//	  - name: Version
//	    kind: integer
//	    constraints:
//	      value: {min: "0", max: "255", extensible: true}
//	  - name: Entry
//	    kind: sequence
//	    extensible: true
//	    fields:
//	      - {name: version, type: Version}
//	      - {name: name, type: utf8String, presence: optional}
//	  - name: Result
//	    kind: choice
//	    variants:
//	      - {name: entry, type: Entry}
//	      - {name: failure, type: utf8String}
//
// Parse decodes the YAML, Build resolves references between definitions
// and computes tags, and Validate reports definitions a BER decoder could
// not tell apart. LoadSchema and LoadSchemas combine the first two for
// files on disk.
//
// # Types
//
// Every built *Type implements types.AsnType, types.TagTreer and
// types.Constrained. SEQUENCE and SET types expose a types.Constructed view
// through Constructed; untagged CHOICE types expose a types.Choice view
// through Choice.
//
// A member with no tag of its own takes the tag of its type. An untagged
// CHOICE member takes the tag tree of the CHOICE. Under AUTOMATIC tagging,
// members of a list where none is tagged are numbered [0], [1], ... across
// the root and extension members.
//
// # Registry
//
// A Registry indexes the types of several modules by "Module.Type" for
// lookup from the command line and by codecs.
package schema
