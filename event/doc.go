// Package event provides the descriptor value delivered with every publish.
//
// A descriptor identifies one occurrence on a bus. It is synthesized once per
// publish call and handed to each subscriber as the first event argument, so a
// callback registered under several names can discriminate the source by Name.
//
// # Descriptor Metadata
//
// Each descriptor includes:
//
//   - ID: UUIDv7 providing time-sortable unique identification per publish
//   - Name: The event name the publisher announced
//   - Timestamp: When the publish began
//
// # Usage Example
//
//	ev := event.New("user.created")
//	fmt.Println(ev.Name) // "user.created"
//
// Application code rarely constructs descriptors directly; the bus package
// creates one per publish and forwards it to every callback.
package event
