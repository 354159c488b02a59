package reservation

// Status is the reservation state machine. The pending stages carry a
// deadline; dp/lunas are paid states awaiting arrival; batal, expired and
// selesai are terminal.
type Status string

const (
	StatusPending1  Status = "pending-1" // rooms selected, price locked
	StatusPending2  Status = "pending-2" // services and special requests recorded
	StatusPending3  Status = "pending-3" // booking code assigned
	StatusDP        Status = "dp"        // deposit paid (group channel)
	StatusLunas     Status = "lunas"     // paid in full
	StatusCheckin   Status = "checkin"
	StatusSelesai   Status = "selesai"
	StatusBatal     Status = "batal"
	StatusExpired   Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending1, StatusPending2, StatusPending3, StatusDP, StatusLunas,
		StatusCheckin, StatusSelesai, StatusBatal, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) IsPending() bool {
	return s == StatusPending1 || s == StatusPending2 || s == StatusPending3
}

func (s Status) IsPaid() bool {
	return s == StatusDP || s == StatusLunas
}

func (s Status) IsTerminal() bool {
	return s == StatusSelesai || s == StatusBatal || s == StatusExpired
}

// Cancellable statuses: anything up to and including paid, before check-in.
func (s Status) IsCancellable() bool {
	return s.IsPending() || s.IsPaid()
}

// Channel distinguishes self-service individual bookings from staff-assisted
// group bookings; it drives caps, booking-code prefixes and payment rules.
type Channel string

const (
	ChannelPersonal Channel = "P"
	ChannelGroup    Channel = "G"
)

func (c Channel) MaxRooms() int {
	if c == ChannelGroup {
		return 20
	}
	return 5
}

func (c Channel) MaxNights() int {
	if c == ChannelGroup {
		return 30
	}
	return 7
}

func (c Channel) CodePrefix() string {
	return string(c)
}
