package usecase

import (
	"fmt"
	"time"

	"clipstream/domain/dto"
	"clipstream/domain/model"
)

// DefaultEndingSoonDays is the window in which an active campaign counts as
// ending soon.
const DefaultEndingSoonDays = 3

// SelectAnnouncements builds the ordered, de-duplicated rotation list for the
// promo carousel. Classification rules, in priority order:
//
//  1. The most-recently-created active campaign is tagged "new" and leads.
//  2. Active campaigns ending within endingSoonDays are tagged "ending";
//     ending-soon overwrites an earlier "new" tag for the same campaign.
//  3. With two or more active campaigns, the oldest still-active one is
//     tagged "popular"; it never overwrites an existing entry.
//  4. All remaining active campaigns are appended tagged "new".
//
// Inactive or expired campaigns are excluded entirely. Every returned entry
// carries exactly one tag and no campaign appears twice.
func SelectAnnouncements(campaigns []model.Campaign, now time.Time, endingSoonDays int) []dto.AnnouncementEntry {
	if endingSoonDays <= 0 {
		endingSoonDays = DefaultEndingSoonDays
	}

	active := make([]model.Campaign, 0, len(campaigns))
	for i := range campaigns {
		if campaigns[i].IsActive(now) {
			active = append(active, campaigns[i])
		}
	}
	if len(active) == 0 {
		return []dto.AnnouncementEntry{}
	}

	entries := make([]dto.AnnouncementEntry, 0, len(active))
	position := make(map[string]int, len(active))
	add := func(c *model.Campaign, tag dto.AnnouncementTag) {
		position[c.ID] = len(entries)
		entries = append(entries, makeEntry(c, tag, now))
	}

	newest := 0
	for i := range active {
		if active[i].CreatedAt.After(active[newest].CreatedAt) {
			newest = i
		}
	}
	add(&active[newest], dto.AnnouncementNew)

	endingWindow := time.Duration(endingSoonDays) * 24 * time.Hour
	for i := range active {
		if active[i].EndDate.Sub(now) > endingWindow {
			continue
		}
		if pos, ok := position[active[i].ID]; ok {
			// ending-soon takes priority over new
			entries[pos] = makeEntry(&active[i], dto.AnnouncementEnding, now)
		} else {
			add(&active[i], dto.AnnouncementEnding)
		}
	}

	if len(active) >= 2 {
		oldest := 0
		for i := range active {
			if active[i].CreatedAt.Before(active[oldest].CreatedAt) {
				oldest = i
			}
		}
		if _, ok := position[active[oldest].ID]; !ok {
			add(&active[oldest], dto.AnnouncementPopular)
		}
	}

	for i := range active {
		if _, ok := position[active[i].ID]; !ok {
			add(&active[i], dto.AnnouncementNew)
		}
	}
	return entries
}

func makeEntry(c *model.Campaign, tag dto.AnnouncementTag, now time.Time) dto.AnnouncementEntry {
	days := DaysLeft(c.EndDate, now)
	e := dto.AnnouncementEntry{
		CampaignID: c.ID,
		Name:       c.Name,
		Tag:        tag,
		EndDate:    c.EndDate,
		DaysLeft:   days,
	}
	if tag == dto.AnnouncementEnding {
		e.EndingLabel = EndingLabel(days)
	}
	return e
}

// DaysLeft is ceil((end - now) / 1 day).
func DaysLeft(end, now time.Time) int {
	diff := end.Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// EndingLabel renders the countdown copy for an ending-soon entry.
func EndingLabel(daysLeft int) string {
	switch {
	case daysLeft <= 0:
		return "ends today"
	case daysLeft == 1:
		return "ends tomorrow"
	default:
		return fmt.Sprintf("%d days left", daysLeft)
	}
}
