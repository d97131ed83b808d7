package urls

// TextualizeHome is the link item in the list view demo.
const TextualizeHome = "https://textualize.io"

// YouTubeWatch is the default base for video links; the video id is appended.
const YouTubeWatch = "https://www.youtube.com/watch?v="

// MongoConnectionString documents the mongodb:// and mongodb+srv:// URI formats
// accepted in MONGO_URI.
const MongoConnectionString = "https://www.mongodb.com/docs/manual/reference/connection-string/"

// MongoNetworkAccess explains the Atlas IP access list, the usual cause of
// server selection timeouts from a new machine.
const MongoNetworkAccess = "https://www.mongodb.com/docs/atlas/security/ip-access-list/"

// MongoViews describes the read-only views the feed demos read from.
const MongoViews = "https://www.mongodb.com/docs/manual/core/views/"
