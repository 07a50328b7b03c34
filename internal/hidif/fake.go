package hidif

// FakeBackend is an in-memory Backend for tests. Every fallible step can be
// forced to fail through the corresponding Err field, and all releases are
// recorded in ReleaseLog so teardown order can be asserted.
type FakeBackend struct {
	Keyboard  *FakeDevice
	LocateErr error
}

func (b *FakeBackend) LocateKeyboard() (Device, error) {
	if b.LocateErr != nil {
		return nil, b.LocateErr
	}
	if b.Keyboard == nil {
		return nil, ErrNoDevice
	}
	return b.Keyboard, nil
}

// FakeDevice implements Device and fans out the fake plugin, interface and
// queue objects, all of which report back into it.
type FakeDevice struct {
	Props map[string]PropValue

	PluginErr     error
	QueryErr      error
	OpenErr       error
	ElementsErr   error
	Elems         []Element
	Values        map[Cookie]int32
	ValueErrs     map[Cookie]error
	AllocQueueErr error
	CreateErr     error
	AddErrs       map[Cookie]error
	StartErr      error
	Pending       []Event
	NextErr       error

	OpenedShared bool
	QueueDepth   uint32
	Added        []Cookie
	Started      bool

	// ReleaseLog records resource releases in the order they happened.
	ReleaseLog []string
}

func (d *FakeDevice) CreatePlugin() (Plugin, error) {
	if d.PluginErr != nil {
		return nil, d.PluginErr
	}
	return &fakePlugin{dev: d}, nil
}

func (d *FakeDevice) Property(key string) PropValue {
	if v, ok := d.Props[key]; ok {
		return v
	}
	return PropValue{Kind: PropMissing}
}

func (d *FakeDevice) Release() error {
	d.ReleaseLog = append(d.ReleaseLog, "device")
	return nil
}

// PendingEvents replaces the queue contents, for re-arming between drains.
func (d *FakeDevice) PendingEvents(evs ...Event) {
	d.Pending = append([]Event(nil), evs...)
}

type fakePlugin struct{ dev *FakeDevice }

func (p *fakePlugin) DeviceInterface() (DeviceInterface, error) {
	if p.dev.QueryErr != nil {
		return nil, p.dev.QueryErr
	}
	return &fakeIface{dev: p.dev}, nil
}

func (p *fakePlugin) Release() error {
	p.dev.ReleaseLog = append(p.dev.ReleaseLog, "plugin")
	return nil
}

type fakeIface struct{ dev *FakeDevice }

func (f *fakeIface) Open(shared bool) error {
	if f.dev.OpenErr != nil {
		return f.dev.OpenErr
	}
	f.dev.OpenedShared = shared
	return nil
}

func (f *fakeIface) Elements() ([]Element, error) {
	if f.dev.ElementsErr != nil {
		return nil, f.dev.ElementsErr
	}
	return f.dev.Elems, nil
}

func (f *fakeIface) ElementValue(c Cookie) (int32, error) {
	if err, ok := f.dev.ValueErrs[c]; ok && err != nil {
		return 0, err
	}
	return f.dev.Values[c], nil
}

func (f *fakeIface) AllocQueue() (Queue, error) {
	if f.dev.AllocQueueErr != nil {
		return nil, f.dev.AllocQueueErr
	}
	return &fakeQueue{dev: f.dev}, nil
}

func (f *fakeIface) Close() error {
	f.dev.ReleaseLog = append(f.dev.ReleaseLog, "interface")
	return nil
}

type fakeQueue struct{ dev *FakeDevice }

func (q *fakeQueue) Create(depth uint32) error {
	if q.dev.CreateErr != nil {
		return q.dev.CreateErr
	}
	q.dev.QueueDepth = depth
	return nil
}

func (q *fakeQueue) AddElement(c Cookie) error {
	if err, ok := q.dev.AddErrs[c]; ok && err != nil {
		return err
	}
	q.dev.Added = append(q.dev.Added, c)
	return nil
}

func (q *fakeQueue) Start() error {
	if q.dev.StartErr != nil {
		return q.dev.StartErr
	}
	q.dev.Started = true
	return nil
}

func (q *fakeQueue) Next() (Event, error) {
	if q.dev.NextErr != nil {
		return Event{}, q.dev.NextErr
	}
	if len(q.dev.Pending) == 0 {
		return Event{}, ErrUnderrun
	}
	ev := q.dev.Pending[0]
	q.dev.Pending = q.dev.Pending[1:]
	return ev, nil
}

func (q *fakeQueue) Release() error {
	q.dev.ReleaseLog = append(q.dev.ReleaseLog, "queue")
	return nil
}
