package parameter

import "time"

// StoreWriteTimeout bounds a best score write so a stuck database never stalls the caller
const StoreWriteTimeout = 2 * time.Second
