// Package findata defines the financial-data lookup abstraction: ticker
// symbol in, fixed schema of optional financial attributes out.
//
// Production code wires findata/yahoo; tests wire findata/mock.
package findata
