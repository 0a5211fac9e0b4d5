/*
Package savemodels holds the shared data models used by storage-backed
providers: metadata that travels alongside a persisted payload in backends
that can store structured attributes (DynamoDB items, object-store metadata).

The core orchestrator never reads these models; the persisted payload shape is
defined entirely by the configured serializer and compressor.
*/
package savemodels
