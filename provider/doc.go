/*
Package provider defines the collaborator contracts the SaveFile orchestrator
consumes: byte-stream I/O, compression, and serialization.

Each concern comes in up to two forms, a synchronous one and a context-aware
one, and a SaveFile may be configured with either or both. The orchestrator
negotiates per call: synchronous entry points require synchronous providers,
while context entry points prefer context providers and fall back to
synchronous ones.

Implementations:
  - fsio: filesystem StreamProvider
  - httpio: HTTP StreamProviderContext
  - ddbio: DynamoDB StreamProviderContext
  - miniostore: S3-compatible StreamProviderContext
  - memio: in-memory providers for testing
  - gzipc, flatec, zstdc: Compressors
  - jsoncodec, yamlcodec: Serializers
*/
package provider
