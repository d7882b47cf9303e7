package debugui

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/ecs"
)

// EntityInfo is one row of the sessions table.
type EntityInfo struct {
	ID             ecs.EntityId
	ArchetypeID    uint32
	ComponentTypes []string
}

// Sessions browses the entities of a storage in a filterable, sortable table
// and shows the selected entity's components. Singletons are listed under
// their own header.
type Sessions struct {
	Storage *ecs.Storage

	entities      []EntityInfo
	lastArchetype int
	lastCount     int
	sortColumn    int
	sortAscending bool

	filterText string
	selected   ecs.EntityId
	pageSize   int
	page       int
}

func NewSessions(storage *ecs.Storage, pageSize int) *Sessions {
	return &Sessions{
		Storage:       storage,
		sortAscending: true,
		lastArchetype: -1,
		pageSize:      max(pageSize, 1),
	}
}

// Selected returns the selected entity, or zero.
func (s *Sessions) Selected() ecs.EntityId {
	return s.selected
}

// Select marks id as the inspected entity.
func (s *Sessions) Select(id ecs.EntityId) {
	s.selected = id
}

// Entities returns the table rows after filtering and sorting.
func (s *Sessions) Entities() []EntityInfo {
	s.rebuildIfNeeded()
	return filterEntities(s.entities, s.filterText)
}

// SetFilter restricts the table to rows whose ID, archetype or component
// names contain text, ignoring case.
func (s *Sessions) SetFilter(text string) {
	s.filterText = text
	s.page = 0
}

// SortBy orders the table by column: 0 ID, 1 archetype, 2 components.
func (s *Sessions) SortBy(column int, ascending bool) {
	s.rebuildIfNeeded()
	s.sortColumn = column
	s.sortAscending = ascending
	sortEntities(s.entities, column, ascending)
}

func (s *Sessions) rebuildIfNeeded() {
	archetypes := len(s.Storage.GetArchetypes())
	count := s.Storage.Count()
	if archetypes == s.lastArchetype && count == s.lastCount && s.entities != nil {
		return
	}
	s.lastArchetype = archetypes
	s.lastCount = count
	s.entities = collectEntities(s.Storage)
	sortEntities(s.entities, s.sortColumn, s.sortAscending)
}

func collectEntities(storage *ecs.Storage) []EntityInfo {
	entities := make([]EntityInfo, 0, storage.Count())
	for _, archetype := range storage.GetArchetypes() {
		componentTypes := make([]string, len(archetype.Types()))
		for i, t := range archetype.Types() {
			componentTypes[i] = t.String()
		}

		for id := range archetype.Iter() {
			entities = append(entities, EntityInfo{
				ID:             id,
				ArchetypeID:    archetype.ID(),
				ComponentTypes: componentTypes,
			})
		}
	}
	return entities
}

func sortEntities(entities []EntityInfo, column int, ascending bool) {
	slices.SortStableFunc(entities, func(a, b EntityInfo) int {
		var c int
		switch column {
		case 1:
			c = cmp.Compare(a.ArchetypeID, b.ArchetypeID)
		case 2:
			c = strings.Compare(strings.Join(a.ComponentTypes, ","), strings.Join(b.ComponentTypes, ","))
		}
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		if !ascending {
			return -c
		}
		return c
	})
}

func filterEntities(entities []EntityInfo, text string) []EntityInfo {
	if text == "" {
		return entities
	}

	filter := strings.ToLower(text)
	filtered := make([]EntityInfo, 0, len(entities))
	for _, entity := range entities {
		id := fmt.Sprintf("%d", entity.ID)
		arch := fmt.Sprintf("0x%x", entity.ArchetypeID)
		components := strings.ToLower(strings.Join(entity.ComponentTypes, " "))

		if strings.Contains(id, filter) || strings.Contains(arch, filter) || strings.Contains(components, filter) {
			filtered = append(filtered, entity)
		}
	}
	return filtered
}

func (s *Sessions) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(300, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 420), imgui.CondOnce)

	if !imgui.BeginV("Sessions", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	filter := s.filterText
	if imgui.InputTextWithHint("##search", "Search...", &filter, imgui.InputTextFlagsNone, nil) {
		s.SetFilter(filter)
	}
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		s.SetFilter("")
	}

	s.renderTable()
	imgui.Separator()
	s.renderSelected()

	if imgui.CollapsingHeaderTreeNodeFlagsV("Singletons", imgui.TreeNodeFlagsNone) {
		for _, t := range s.Storage.SingletonTypes() {
			if imgui.TreeNodeStr(t.String()) {
				renderComponent(s.Storage.GetSingleton(t))
				imgui.TreePop()
			}
		}
	}

	imgui.End()
}

func (s *Sessions) renderTable() {
	entities := s.Entities()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("SessionTable", 3, tableFlags, imgui.NewVec2(0, 160), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Archetype")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			s.SortBy(int(spec.ColumnIndex()), spec.SortDirection() == imgui.SortDirectionAscending)
			sortSpecs.SetSpecsDirty(false)
			entities = s.Entities()
		}

		start := min(s.page*s.pageSize, len(entities))
		end := min(start+s.pageSize, len(entities))
		for _, entity := range entities[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.ID), s.selected == entity.ID, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				s.selected = entity.ID
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%X", entity.ArchetypeID))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.ComponentTypes, ", "))
		}

		imgui.EndTable()
	}

	if len(entities) > s.pageSize {
		pages := (len(entities) + s.pageSize - 1) / s.pageSize
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", s.page+1, pages, len(entities)))
		imgui.SameLine()
		if imgui.Button("Prev") && s.page > 0 {
			s.page--
		}
		imgui.SameLine()
		if imgui.Button("Next") && s.page < pages-1 {
			s.page++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(entities)))
	}
}

func (s *Sessions) renderSelected() {
	if s.selected == 0 {
		imgui.Text("No entity selected")
		return
	}

	archetype := s.Storage.GetArchetypeById(s.selected.ArchetypeId())
	if archetype == nil {
		imgui.Text(fmt.Sprintf("Entity %d not found", s.selected))
		return
	}

	imgui.Text(fmt.Sprintf("Entity %d", s.selected))
	for _, compType := range archetype.Types() {
		component := s.Storage.GetComponent(s.selected, compType)
		if component == nil {
			continue
		}
		if imgui.TreeNodeExStrV(compType.String(), imgui.TreeNodeFlagsDefaultOpen) {
			renderComponent(component)
			imgui.TreePop()
		}
	}
}

func renderComponent(component any) {
	val := reflect.Indirect(reflect.ValueOf(component))
	if text, ok := formatValue(val); ok {
		imgui.Text(text)
		return
	}
	renderFields(val)
}

func renderFields(val reflect.Value) {
	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		fieldVal := val.Field(field.Index)
		text, ok := formatValue(fieldVal)
		if ok {
			imgui.Text(fmt.Sprintf("%s: %s", field.Name, text))
			continue
		}
		if imgui.TreeNodeStr(field.Name) {
			renderFields(reflect.Indirect(fieldVal))
			imgui.TreePop()
		}
	}
}
