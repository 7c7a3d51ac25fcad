package datatype

// Domain is a decoration attached to a base type: it overrides the display
// name and, per text format and direction, optionally takes over
// serialization. Overrides are granular — a domain may implement only JSON
// serialization and leave every other case to the base type.
type Domain interface {
	// Name returns the decorated display name
	Name() string
	// SerializerFor returns the domain's serializer for the format, if any
	SerializerFor(f TextFormat) (TextSerializer, bool)
	// DeserializerFor returns the domain's deserializer for the format, if any
	DeserializerFor(f TextFormat) (TextDeserializer, bool)
}

// decorated is a descriptor with a domain list attached. It delegates every
// capability to the wrapped base type; only naming and the domain list
// differ. Resolution order is first attached first: Domains()[0] is the
// outermost decoration, consulted before any later one and before the base.
type decorated struct {
	DataType
	domains []Domain
}

func (d *decorated) Name() string { return d.domains[0].Name() }

func (d *decorated) Domains() []Domain { return d.domains }

// AppendDomain attaches a domain to a descriptor, returning a new
// descriptor; the argument is never mutated, so published descriptors stay
// immutable. Appending to an already decorated descriptor keeps the
// existing decorations first: the earlier a domain was attached, the
// earlier it is consulted.
func AppendDomain(dt DataType, domain Domain) DataType {
	if dec, ok := dt.(*decorated); ok {
		domains := make([]Domain, 0, len(dec.domains)+1)
		domains = append(domains, dec.domains...)
		domains = append(domains, domain)
		return &decorated{DataType: dec.DataType, domains: domains}
	}
	return &decorated{DataType: dt, domains: []Domain{domain}}
}

// SerializationDomain is a Domain backed by a per-format capability table.
// Fill it with WithSerializer/WithDeserializer before attaching; once
// attached to a published descriptor it must not change.
type SerializationDomain struct {
	name          string
	serializers   map[TextFormat]TextSerializer
	deserializers map[TextFormat]TextDeserializer
}

// NewSerializationDomain creates an empty domain with the given display name
func NewSerializationDomain(name string) *SerializationDomain {
	return &SerializationDomain{
		name:          name,
		serializers:   make(map[TextFormat]TextSerializer),
		deserializers: make(map[TextFormat]TextDeserializer),
	}
}

// WithSerializer sets the serializer for one format and returns the domain
// for chaining
func (d *SerializationDomain) WithSerializer(f TextFormat, fn TextSerializer) *SerializationDomain {
	d.serializers[f] = fn
	return d
}

// WithDeserializer sets the deserializer for one format and returns the
// domain for chaining
func (d *SerializationDomain) WithDeserializer(f TextFormat, fn TextDeserializer) *SerializationDomain {
	d.deserializers[f] = fn
	return d
}

func (d *SerializationDomain) Name() string { return d.name }

func (d *SerializationDomain) SerializerFor(f TextFormat) (TextSerializer, bool) {
	fn, ok := d.serializers[f]
	return fn, ok
}

func (d *SerializationDomain) DeserializerFor(f TextFormat) (TextDeserializer, bool) {
	fn, ok := d.deserializers[f]
	return fn, ok
}
