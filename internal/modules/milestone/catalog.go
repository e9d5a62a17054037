package milestone

import "fmt"

type phase struct {
	Title       string
	Description string
}

// phaseCatalog is the fixed ordered list of construction phases used to
// name generated milestones. Schedules longer than the catalog fall back
// to generic numbered phases.
var phaseCatalog = []phase{
	{"Project Initiation & Planning", "Kick-off meeting, detailed requirements gathering, finalize material selection based on compatibility and budget, develop a comprehensive project plan, and set up project tracking."},
	{"Site Preparation & Excavation", "Site clearing, levelling, marking and excavation for the foundation as per the approved layout plan."},
	{"Foundation & Plinth Work", "Footings, foundation concrete, plinth beam and backfilling up to plinth level with compaction and anti-termite treatment."},
	{"Structural Framework", "Columns, beams and slab shuttering, reinforcement and concreting for the structural frame."},
	{"Roofing & Slab Work", "Roof slab casting, curing and waterproofing of terrace and sunken portions."},
	{"Brickwork & Walls", "External and internal wall masonry, lintels and chajjas as per architectural drawings."},
	{"Electrical & Plumbing Rough-In", "Concealed conduiting, wall chasing, water supply and drainage lines laid before plastering."},
	{"Plastering & Surface Finishing", "Internal and external plastering, putty and surface preparation for finishes."},
	{"Flooring & Tiling", "Floor tiling, wall dado in wet areas, granite and skirting work."},
	{"Doors, Windows & Fixtures", "Door and window frames and shutters, grills, sanitary fixtures and electrical fittings."},
	{"Painting & Final Finishes", "Primer and paint coats, polishing, deep cleaning and snag-list closure."},
	{"Inspection & Handover", "Joint inspection, rectification of defects, documentation and handover of the completed work."},
}

// phaseFor returns the catalog entry for a zero-based milestone index,
// or the generic fallback once the catalog is exhausted.
func phaseFor(i int) (title, description string) {
	if i >= 0 && i < len(phaseCatalog) {
		return phaseCatalog[i].Title, phaseCatalog[i].Description
	}
	return fmt.Sprintf("Milestone %d", i+1), fmt.Sprintf("Work phase %d of the project", i+1)
}
