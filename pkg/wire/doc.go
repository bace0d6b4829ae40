// Package wire defines the CBOR encoding of daytime values and evaluation
// records.
//
// Structures use integer map keys for compactness. Encoding is
// deterministic (canonical key order, definite lengths). Decoding tolerates
// duplicate keys and indefinite lengths so older and newer writers can be
// read.
//
// An Operand is a kind tag plus raw seconds. Decoding re-validates the
// seconds against the daytime invariants, so a corrupted or hostile stream
// never yields a ClockTime outside [0, 86400) or a negative Duration.
package wire
