// version.go
package ndindex

// Version is the library version reported by the ndx tool.
const Version = "0.2.0"
