// Package proto holds the protobuf definitions for serviced. Run
// `go generate ./proto` to regenerate the Go bindings; the output lands in
// proto/serviced/v1 next to the .proto file.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative serviced/v1/serviced.proto
