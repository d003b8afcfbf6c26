/*
Package ports defines the driven ports (interfaces) of the tweetflow service.

These interfaces decouple content generation from the storage that backs it,
so the HTTP server can run with an in-process cache or a shared Redis one.

# Key Interfaces

  - ContentCache: stores generated content (tweets, images, comments, DMs) by key.
*/
package ports
