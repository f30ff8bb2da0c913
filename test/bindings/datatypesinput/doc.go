// Package datatypesinput holds the generated bindings for the DataTypesInput
// echo contract and the suite that checks their shapes and behavior.
package datatypesinput

//go:generate go run github.com/Mohsinsiddi/w3bind generate --abi ../../../internal/testchain/testdata/DataTypesInput.json --pkg datatypesinput --out datatypesinput.go
