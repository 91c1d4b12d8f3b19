/*
Package ports defines the driven ports (interfaces) of the symdq engine.

These interfaces decouple the engine from storage backends, so chains can be
kept in memory, on disk or in Redis.

# Key Interfaces

  - ChainStore: persists named chain documents.

RunChainStoreContract is a reusable test suite every ChainStore adapter runs.
*/
package ports
