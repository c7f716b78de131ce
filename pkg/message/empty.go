package message

// KeepAlive is the zero-length message.
type KeepAlive struct{}

// Choke tells the receiver its requests will not be served.
type Choke struct{}

// Unchoke tells the receiver its requests will be served.
type Unchoke struct{}

// Interested tells the receiver the sender wants its pieces.
type Interested struct{}

// Uninterested tells the receiver the sender does not want its pieces.
type Uninterested struct{}

var (
	_ Message = KeepAlive{}
	_ Message = Choke{}
	_ Message = Unchoke{}
	_ Message = Interested{}
	_ Message = Uninterested{}
)

// NewKeepAlive ...
func NewKeepAlive() KeepAlive { return KeepAlive{} }

// NewChoke ...
func NewChoke() Choke { return Choke{} }

// NewUnchoke ...
func NewUnchoke() Unchoke { return Unchoke{} }

// NewInterested ...
func NewInterested() Interested { return Interested{} }

// NewUninterested ...
func NewUninterested() Uninterested { return Uninterested{} }

// Type ...
func (KeepAlive) Type() Type    { return TypeKeepAlive }
func (Choke) Type() Type        { return TypeChoke }
func (Unchoke) Type() Type      { return TypeUnchoke }
func (Interested) Type() Type   { return TypeInterested }
func (Uninterested) Type() Type { return TypeUninterested }

func (KeepAlive) isMessage()    {}
func (Choke) isMessage()        {}
func (Unchoke) isMessage()      {}
func (Interested) isMessage()   {}
func (Uninterested) isMessage() {}

func (KeepAlive) String() string    { return TypeKeepAlive.String() }
func (Choke) String() string        { return TypeChoke.String() }
func (Unchoke) String() string      { return TypeUnchoke.String() }
func (Interested) String() string   { return TypeInterested.String() }
func (Uninterested) String() string { return TypeUninterested.String() }

// statusByMarker maps the markers valid at length 1 to their messages.
var statusByMarker = map[MsgID]Message{
	MsgChoke:        Choke{},
	MsgUnchoke:      Unchoke{},
	MsgInterested:   Interested{},
	MsgUninterested: Uninterested{},
}
