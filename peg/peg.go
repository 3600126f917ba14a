// Copyright 2024 Pegcomp, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

// Package peg defines the surface of a program expression
// graph (PEG) as it is consumed by analyses.
//
// A PEG is a graph of computation nodes in which each node's
// outgoing edges point at the operands it depends on, and a
// single distinguished sink node represents the observable
// result of the program. Analyses in this module never build
// or mutate the graph; they only read it through the Graph
// interface, so the surrounding compiler is free to represent
// nodes however it likes.
package peg

// NodeID identifies one node of a value-dependency graph.
// Identities are assigned by the graph implementation and
// are opaque to analyses except for equality.
type NodeID uint32

// NoNode is returned by lookups that have no node to return.
const NoNode = ^NodeID(0)

// Graph is the read-only view of a value-dependency graph.
//
// Operand edges run from a node to the values it consumes;
// consumer edges are their inverse. Implementations must
// iterate both edge sets in a stable order: analyses rely on
// identical iteration order across repeated traversals of the
// same graph snapshot. The graph must not be mutated while an
// analysis is running.
type Graph interface {
	// Sink returns the distinguished sink node
	// (the program's return value).
	Sink() NodeID

	// NumOperands returns the number of operand
	// edges leaving n.
	NumOperands(n NodeID) int

	// Operand returns the i'th operand of n,
	// with 0 <= i < NumOperands(n).
	Operand(n NodeID, i int) NodeID

	// EachConsumer calls fn once for every node
	// that consumes n, in a stable order.
	EachConsumer(n NodeID, fn func(NodeID))
}
