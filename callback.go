package callback

// Callback is the uniform handle for a deferred call. Invoke executes the
// captured callable with its captured arguments and discards any results.
// Calling Invoke again replays the identical snapshot.
type Callback interface {
	Invoke()
}
