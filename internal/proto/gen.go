// Package proto holds the account service wire contract. The Go bindings are
// generated from account.proto and are not committed; run `go generate ./...`
// with protoc, protoc-gen-go and protoc-gen-go-grpc on PATH to produce them.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative account.proto
