package catalog

// Catalog resolves lessons by ID across the static modules and the user's
// generated topics. Static lessons always win a lookup over a dynamic
// lesson with the same ID.
type Catalog struct {
	static  []Lesson
	dynamic []Lesson
}

// New builds a catalog over the built-in modules plus any previously
// generated lessons restored from storage.
func New(dynamic []Lesson) *Catalog {
	return &Catalog{
		static:  StaticLessons(),
		dynamic: dynamic,
	}
}

// All returns every lesson, static modules first then generated topics,
// in stable order.
func (c *Catalog) All() []Lesson {
	out := make([]Lesson, 0, len(c.static)+len(c.dynamic))
	out = append(out, c.static...)
	out = append(out, c.dynamic...)
	return out
}

// Static returns only the built-in modules.
func (c *Catalog) Static() []Lesson {
	return c.static
}

// Dynamic returns only the generated topics.
func (c *Catalog) Dynamic() []Lesson {
	return c.dynamic
}

// FindByID returns the lesson with the given ID, checking static modules
// before dynamic topics.
func (c *Catalog) FindByID(id string) (*Lesson, bool) {
	for i := range c.static {
		if c.static[i].ID == id {
			return &c.static[i], true
		}
	}
	for i := range c.dynamic {
		if c.dynamic[i].ID == id {
			return &c.dynamic[i], true
		}
	}
	return nil, false
}

// AddDynamic appends a generated lesson to the catalog. The caller is
// responsible for persisting it to the progress record.
func (c *Catalog) AddDynamic(l Lesson) {
	c.dynamic = append(c.dynamic, l)
}
