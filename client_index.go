package tickbook

// ClientIndex maps a client's public ClientID to the EngineID of its
// resting order in the pool. Lookups are O(1) expected; the map grows on
// demand as new client ids are seen, sized initially from a hint.
type ClientIndex struct {
	byClient map[int64]int32
}

// NewClientIndex preallocates a map with room for bucketHint entries.
func NewClientIndex(bucketHint int) *ClientIndex {
	return &ClientIndex{byClient: make(map[int64]int32, bucketHint)}
}

// Put records that clientID's resting order lives at engineID.
func (c *ClientIndex) Put(clientID int64, engineID int32) {
	c.byClient[clientID] = engineID
}

// Get returns the EngineID recorded for clientID, if any.
func (c *ClientIndex) Get(clientID int64) (int32, bool) {
	id, ok := c.byClient[clientID]
	return id, ok
}

// Delete removes clientID's entry. It is a no-op if clientID is unknown.
func (c *ClientIndex) Delete(clientID int64) {
	delete(c.byClient, clientID)
}

// Len returns the number of client ids currently tracked.
func (c *ClientIndex) Len() int { return len(c.byClient) }
