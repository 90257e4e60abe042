/*
Package multitag provides multiple string tags for scene objects.

Multitag implements many-to-many associations between objects and tags, and answers membership queries in
both directions: the tags of an object, and the objects having a tag. Objects can be of any comparable type,
typically pointers to the host's scene nodes.

On top of the index, a hierarchy layer walks the parent chain of an object, as provided by the host, and
returns the closest, or all, ancestors whose tags match a predicate.

The index lives in memory only and belongs to a single scene. Hosts register and remove tags through the
Lifecycle interface when their objects become active or inactive, and clear the index when the scene is
unloaded. The list of tag names offered by editing tools is kept separately, by the names package.
*/
package multitag
