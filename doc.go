// Package meridian provides the type descriptor layer of a columnar
// analytical database: data type metadata, serialization dispatch across
// text formats, substream path resolution for on-disk layout, and the
// adaptive size hints used by bulk deserialization.
//
// # Architecture
//
// The module is organized around a small set of packages:
//
// 1. pkg/datatype: the DataType descriptor interface, the domain decoration
// chain, the text serialization dispatcher, substream path to stream name
// resolution, and the built-in type registry.
//
// 2. pkg/column: in-memory column representations, including dictionary
// encoded strings, bit-packed booleans, and constant columns that store a
// single physical value for any logical length.
//
// 3. pkg/textio: low-level text escaping primitives shared by the escaped,
// quoted, CSV, JSON and XML formats.
//
// 4. pkg/nameutil: identifier escaping and nested name splitting used by
// stream name resolution.
//
// # Quick Start
//
// Resolve a type from the registry and serialize a value:
//
//	dt, err := datatype.Get("String")
//	if err != nil {
//		log.Fatal(err)
//	}
//	col, _ := dt.CreateColumn()
//	_ = col.Append("hello")
//	var buf bytes.Buffer
//	_ = datatype.SerializeText(dt, datatype.FormatJSON, col, 0, &buf, nil)
package meridian
