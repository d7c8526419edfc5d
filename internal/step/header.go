package step

import (
	"time"
)

// Header carries the file metadata and product naming.
type Header struct {
	FileName          string
	Description       string
	Author            string
	Organization      string
	Preprocessor      string
	OriginatingSystem string
	Authorization     string
	ProductName       string
	Time              time.Time
}

// DefaultHeader fills every field with the values the tool writes when
// nothing is configured.
func DefaultHeader(fileName string, now time.Time) Header {
	return Header{
		FileName:          fileName,
		Description:       "none",
		Author:            "none",
		Organization:      "none",
		Preprocessor:      "none",
		OriginatingSystem: "stepfg",
		Authorization:     "none",
		ProductName:       "Part1",
		Time:              now,
	}
}

// productContext is what the geometry records link back to.
type productContext struct {
	geometricContext ID // units and uncertainty
	shapeRep         ID // the product's SHAPE_REPRESENTATION
}

// registerProduct writes the AP203 product structure: application
// context, product and its definition, approval, security classification,
// person and organisation assignments, units and the shape representation
// the solids attach to.
func registerProduct(reg *Registry, h Header) productContext {
	k := func(kind string) Key { return Key{Kind: kind} }
	blank := Str(" ")

	app := reg.Add(k("application_context"), Simple("APPLICATION_CONTEXT",
		Str("configuration controlled 3D design of mechanical parts and assemblies")))
	mech := reg.Add(k("mechanical_context"), Simple("MECHANICAL_CONTEXT", blank, app, Str("mechanical")))
	design := reg.Add(k("design_context"), Simple("DESIGN_CONTEXT", blank, app, Str("design")))
	reg.Add(k("application_protocol"), Simple("APPLICATION_PROTOCOL_DEFINITION",
		Str("international standard"), Str("config_control_design"), Int(1994), app))

	product := reg.Add(k("product"), Simple("PRODUCT", Str(h.ProductName), Str(h.ProductName), Str(""), Refs(mech)))
	formation := reg.Add(k("product_formation"), Simple("PRODUCT_DEFINITION_FORMATION_WITH_SPECIFIED_SOURCE",
		Str(""), blank, product, Enum("NOT_KNOWN")))
	category := reg.Add(k("product_category"), Simple("PRODUCT_CATEGORY", Str("part"), Unset))
	related := reg.Add(k("product_related_category"), Simple("PRODUCT_RELATED_PRODUCT_CATEGORY",
		Str("detail"), Unset, Refs(product)))
	reg.Add(k("product_category_relationship"), Simple("PRODUCT_CATEGORY_RELATIONSHIP", blank, blank, category, related))

	t := h.Time
	_, offset := t.Zone()
	// ahead_or_behind in CONFIG_CONTROL_DESIGN is AHEAD or BEHIND only.
	sense := Enum("AHEAD")
	if offset < 0 {
		sense, offset = Enum("BEHIND"), -offset
	}
	utc := reg.Add(k("utc_offset"), Simple("COORDINATED_UNIVERSAL_TIME_OFFSET",
		Int(offset/3600), Int(offset%3600/60), sense))
	date := reg.Add(k("calendar_date"), Simple("CALENDAR_DATE", Int(t.Year()), Int(t.Day()), Int(int(t.Month()))))
	clock := reg.Add(k("local_time"), Simple("LOCAL_TIME", Int(t.Hour()), Int(t.Minute()), Real(t.Second()), utc))
	stamp := reg.Add(k("date_and_time"), Simple("DATE_AND_TIME", date, clock))

	definition := reg.Add(k("product_definition"), Simple("PRODUCT_DEFINITION", Str(""), blank, formation, design))

	level := reg.Add(k("security_level"), Simple("SECURITY_CLASSIFICATION_LEVEL", Str("unclassified")))
	security := reg.Add(k("security_classification"), Simple("SECURITY_CLASSIFICATION", blank, blank, level))
	classDate := reg.Add(k("role_classification_date"), Simple("DATE_TIME_ROLE", Str("classification_date")))
	reg.Add(k("classification_date"), Simple("CC_DESIGN_DATE_AND_TIME_ASSIGNMENT", stamp, classDate, Refs(security)))

	approverRole := reg.Add(k("approval_role"), Simple("APPROVAL_ROLE", Str("APPROVER")))
	status := reg.Add(k("approval_status"), Simple("APPROVAL_STATUS", Str("not_yet_approved")))
	approval := reg.Add(k("approval"), Simple("APPROVAL", status, blank))

	person := reg.Add(k("person"), Simple("PERSON", blank, Str(h.Author), blank, Unset, Unset, Unset))
	org := reg.Add(k("organization"), Simple("ORGANIZATION", blank, Str(h.Organization), blank))
	reg.Add(k("personal_address"), Simple("PERSONAL_ADDRESS",
		blank, blank, blank, blank, blank, blank, blank, blank, blank, blank, blank, blank, Refs(person), blank))
	pao := reg.Add(k("person_and_organization"), Simple("PERSON_AND_ORGANIZATION", person, org))

	assign := func(role string, items ...ID) {
		r := reg.Add(k("role_"+role), Simple("PERSON_AND_ORGANIZATION_ROLE", Str(role)))
		reg.Add(k("assign_"+role), Simple("CC_DESIGN_PERSON_AND_ORGANIZATION_ASSIGNMENT", pao, r, Refs(items...)))
	}
	assign("classification_officer", security)

	created := reg.Add(k("role_creation_date"), Simple("DATE_TIME_ROLE", Str("creation_date")))
	reg.Add(k("creation_date"), Simple("CC_DESIGN_DATE_AND_TIME_ASSIGNMENT", stamp, created, Refs(definition)))
	reg.Add(k("cc_design_approval"), Simple("CC_DESIGN_APPROVAL", approval, Refs(security, formation, definition)))
	reg.Add(k("approval_person"), Simple("APPROVAL_PERSON_ORGANIZATION", pao, approval, approverRole))
	reg.Add(k("approval_date"), Simple("APPROVAL_DATE_TIME", stamp, approval))
	assign("design_supplier", formation)
	assign("creator", formation, definition)
	assign("design_owner", product)
	reg.Add(k("cc_design_security"), Simple("CC_DESIGN_SECURITY_CLASSIFICATION", security, Refs(formation)))

	shapeDef := reg.Add(k("product_definition_shape"), Simple("PRODUCT_DEFINITION_SHAPE", blank, blank, definition))

	length := reg.Add(k("unit_length"), Complex(
		Part{Name: "LENGTH_UNIT"},
		Part{Name: "NAMED_UNIT", Params: []Param{Derived}},
		Part{Name: "SI_UNIT", Params: []Param{Enum("MILLI"), Enum("METRE")}},
	))
	angle := reg.Add(k("unit_angle"), Complex(
		Part{Name: "NAMED_UNIT", Params: []Param{Derived}},
		Part{Name: "PLANE_ANGLE_UNIT"},
		Part{Name: "SI_UNIT", Params: []Param{Unset, Enum("RADIAN")}},
	))
	solidAngle := reg.Add(k("unit_solid_angle"), Complex(
		Part{Name: "NAMED_UNIT", Params: []Param{Derived}},
		Part{Name: "SI_UNIT", Params: []Param{Unset, Enum("STERADIAN")}},
		Part{Name: "SOLID_ANGLE_UNIT"},
	))
	uncertainty := reg.Add(k("uncertainty"), Simple("UNCERTAINTY_MEASURE_WITH_UNIT",
		Typed{Name: "LENGTH_MEASURE", Value: Real(0.005)}, length,
		Str("distance_accuracy_value"), Str("CONFUSED CURVE UNCERTAINTY")))
	geomCtx := reg.Add(k("geometric_context"), Complex(
		Part{Name: "GEOMETRIC_REPRESENTATION_CONTEXT", Params: []Param{Int(3)}},
		Part{Name: "GLOBAL_UNCERTAINTY_ASSIGNED_CONTEXT", Params: []Param{Refs(uncertainty)}},
		Part{Name: "GLOBAL_UNIT_ASSIGNED_CONTEXT", Params: []Param{Refs(length, angle, solidAngle)}},
		Part{Name: "REPRESENTATION_CONTEXT", Params: []Param{blank, blank}},
	))

	origin := reg.Add(k("world_origin"), Simple("CARTESIAN_POINT", blank, List{Real(0), Real(0), Real(0)}))
	placement := reg.Add(k("world_placement"), Simple("AXIS2_PLACEMENT_3D", blank, origin, Unset, Unset))
	shapeRep := reg.Add(k("shape_representation"), Simple("SHAPE_REPRESENTATION", blank, Refs(placement), geomCtx))
	reg.Add(k("shape_definition_representation"), Simple("SHAPE_DEFINITION_REPRESENTATION", shapeDef, shapeRep))

	return productContext{geometricContext: geomCtx, shapeRep: shapeRep}
}
