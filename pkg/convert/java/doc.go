// Package java converts Java class-hierarchy analyzer exports to the
// unified graph model.
//
// The input is a package tree: nested elements tagged "package" or
// "class". [Convert] walks the tree depth-first and emits one node per
// class ("interface" nodes for interface types), then resolves
// superclass, implemented-interface, and outgoing-dependency references
// into edges by unqualified simple name. References to classes outside
// the analyzed tree (JDK types, third-party libraries) resolve to
// nothing and produce no edge; java.lang.Object is additionally treated
// as a non-edge even though every class names it.
package java
