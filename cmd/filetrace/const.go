package main

import "time"

const shutdownTimeout = 10 * time.Second
