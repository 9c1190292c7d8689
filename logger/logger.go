package logger

//Log represents free form log function
type Log func(message string, args ...interface{})

//Reparent notifies about a node moved under a newly inserted, more general node
type Reparent func(child, from, to string)

//Resolution notifies about an ancestor resolution with climb step count
type Resolution func(key, matched string, steps int)

//Logger represents build and query tracing contract
type Logger interface {
	Reparent() Reparent
	Resolution() Resolution
	Log() Log
}
